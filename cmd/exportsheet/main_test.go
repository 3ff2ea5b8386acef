package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/xlsx"
)

type closeRecorder struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func snapshotTable() *domain.Table {
	return domain.NewTable([][]string{
		{"ALUNO", "CPF", "Turma"},
		{"Ana Souza", "12345678901", "T1"},
	})
}

func TestWriteSnapshot_WritesAndCloses(t *testing.T) {
	out := &closeRecorder{}

	require.NoError(t, writeSnapshot(out, snapshotTable(), ""))

	assert.True(t, out.closed)
	got, err := xlsx.ParseWorkbook(bytes.NewReader(out.Bytes()), "Pagamentos")
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Ana Souza", got.Records[0].Get("ALUNO"))
}

func TestWriteSnapshot_ReportsCloseError(t *testing.T) {
	closeErr := errors.New("disk full")
	out := &closeRecorder{closeErr: closeErr}

	err := writeSnapshot(out, snapshotTable(), "")

	assert.ErrorIs(t, err, closeErr)
	assert.True(t, out.closed)
}
