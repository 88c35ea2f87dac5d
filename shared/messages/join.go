package messages

// JoinRequest is sent by a client after connecting to request joining a zone.
type JoinRequest struct {
	Version        string
	PlayerName     string
	Zone           string
	ReconnectToken string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	NetworkID      uint
	ReconnectToken string
	ServerName     string
	Zone           string
	TickRate       int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
