package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

func TestModalClosedRendersNothing(t *testing.T) {
	t.Parallel()

	view, ok, err := Modal(ModalProps{Title: "Hidden"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ModalView{}, view)
}

func TestModalDefaultSize(t *testing.T) {
	t.Parallel()

	class, err := ModalContentClasses("", "")
	require.NoError(t, err)
	assert.Equal(t, modalContentBase+" max-w-lg", class)

	class, err = ModalContentClasses(ModalSizeExtraLarge, "sm:rounded-xl")
	require.NoError(t, err)
	assert.Equal(t, modalContentBase+" max-w-4xl sm:rounded-xl", class)
}

func TestModalHeaderOnlyWithTitleOrDescription(t *testing.T) {
	t.Parallel()

	view, ok, err := Modal(ModalProps{Open: true, Children: []Node{Text("body"), nil}})
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, view.ShowHeader)
	assert.Empty(t, view.HeaderClass)
	assert.Equal(t, []string{"body"}, view.Body)

	view, ok, err = Modal(ModalProps{Open: true, Description: "Are you sure?"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, view.ShowHeader)
	assert.Equal(t, ModalHeaderClass, view.HeaderClass)
	assert.Empty(t, view.TitleClass)
	assert.Equal(t, ModalDescriptionClass, view.DescriptionClass)
}

func TestModalInvalidSize(t *testing.T) {
	t.Parallel()

	_, ok, err := Modal(ModalProps{Open: true, Size: "huge"})
	assert.False(t, ok)

	var selectionErr *fancyerrors.SelectionError
	require.ErrorAs(t, err, &selectionErr)
	assert.Equal(t, "size", selectionErr.Axis)
}

func TestSetModalOpenCallsOnCloseOnDismiss(t *testing.T) {
	t.Parallel()

	closed := 0
	props := ModalProps{Open: true, OnClose: func() { closed++ }}

	SetModalOpen(&props, true)
	assert.Zero(t, closed)

	SetModalOpen(&props, false)
	assert.Equal(t, 1, closed)
	assert.False(t, props.Open)

	SetModalOpen(&props, false)
	assert.Equal(t, 1, closed)
}
