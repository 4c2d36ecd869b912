package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/thakurdishanttt/cold-email-gen/cmd/coldemaild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := main.NewMain()

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "coldemaild")
	assert.Contains(t, stdout.String(), "--addr")
}
