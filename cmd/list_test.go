package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"visage.dev/pkg/visage/internal/domain"
	domainmocks "visage.dev/pkg/visage/internal/domain/mocks"
	m "visage.dev/pkg/visage/internal/model"
)

func withWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf
	t.Cleanup(func() { workflow = original })
}

func testRootCmd(sub *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestListCmd_PassesFaceFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.On("List", mock.Anything, domain.ListArgs{FaceFile: m.Path("faces.yaml")}).Return(nil)

	cmd := testRootCmd(newListCmd())
	cmd.SetArgs([]string{"list", "faces.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_RequiresFaceFile(t *testing.T) {
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := testRootCmd(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}
