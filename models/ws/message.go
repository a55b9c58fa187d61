package wsmodels

// ServerMessage is a change notification pushed to connected clients. List
// pages refetch on receipt.
type ServerMessage struct {
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	EntityID string `json:"entity_id"`
	Time     string `json:"time"`
}
