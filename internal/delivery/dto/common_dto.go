package dto

// MessageResponse is the generic success envelope used by operations that
// return no resource body.
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}
