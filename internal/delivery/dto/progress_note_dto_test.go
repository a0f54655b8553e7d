package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcedureLinkInput_UnmarshalBareID(t *testing.T) {
	var link ProcedureLinkInput
	require.NoError(t, json.Unmarshal([]byte(`7`), &link))
	assert.EqualValues(t, 7, link.ProcedimentoID)
	assert.Empty(t, link.Observacoes)
}

func TestProcedureLinkInput_UnmarshalObject(t *testing.T) {
	var link ProcedureLinkInput
	raw := []byte(`{"procedimento_id": 3, "observacoes": "membro inferior"}`)
	require.NoError(t, json.Unmarshal(raw, &link))
	assert.EqualValues(t, 3, link.ProcedimentoID)
	assert.Equal(t, "membro inferior", link.Observacoes)
}

func TestProcedureLinkInput_UnmarshalMixedList(t *testing.T) {
	var req CreateProgressNoteRequest
	raw := []byte(`{
		"paciente_id": 1,
		"procedimentos": [5, {"procedimento_id": 9, "observacoes": "alongamento"}]
	}`)
	require.NoError(t, json.Unmarshal(raw, &req))

	require.Len(t, req.Procedimentos, 2)
	assert.EqualValues(t, 5, req.Procedimentos[0].ProcedimentoID)
	assert.EqualValues(t, 9, req.Procedimentos[1].ProcedimentoID)
	assert.Equal(t, "alongamento", req.Procedimentos[1].Observacoes)
}

func TestProcedureLinkInput_UnmarshalInvalid(t *testing.T) {
	var link ProcedureLinkInput
	err := json.Unmarshal([]byte(`"sete"`), &link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "procedimento inválido")
}
