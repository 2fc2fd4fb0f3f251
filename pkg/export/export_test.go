package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers:    []string{"Seção", "Tipo", "Mensagem"},
		KindColumn: "Tipo",
		Preamble:   []string{"Semestre de ingresso: 2024.1"},
		Rows: []map[string]string{
			{"Seção": "Análise de ACC", "Tipo": "header", "Mensagem": "Análise de ACC"},
			{"Seção": "Análise de ACC", "Tipo": "warning", "Mensagem": "Requisito pendente, você possui apenas 0"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Seção,Tipo,Mensagem\nAnálise de ACC,header,Análise de ACC\nAnálise de ACC,warning,\"Requisito pendente, você possui apenas 0\"\n", string(out))
}

func TestCSVExporterOptions(t *testing.T) {
	out, err := NewCSVExporter(WithComma(';'), WithBOM()).Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\xef\xbb\xbfSeção;Tipo;Mensagem\n")))
	assert.Contains(t, string(out), "Requisito pendente, você possui apenas 0\n")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Analisador de ACC e ACEX")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
