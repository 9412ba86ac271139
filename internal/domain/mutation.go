package domain

// MutationResult é a resposta dos endpoints de criação e atualização.
// Success é opcional: só um false explícito indica rejeição.
type MutationResult struct {
	Success   *bool  `json:"success,omitempty"`
	Message   string `json:"message"`
	NewPOID   ID     `json:"new_po_id,omitempty"`
	NewPOCode Text   `json:"new_po_code,omitempty"`
}

func (r *MutationResult) Rejected() bool {
	return r != nil && r.Success != nil && !*r.Success
}
