package model

// HandshakePacket is issued by the server and must be echoed back by the
// client to prove a completed round trip.
type HandshakePacket struct {
	Nonce         string   `json:"nonce"`
	ServerVersion string   `json:"serverVersion"`
	ServerType    string   `json:"serverType"`
	ServerName    string   `json:"serverName"`
	Timestamp     int64    `json:"timestamp"`
	Features      []string `json:"features"`
}

// HandshakeConfirm carries the echoed nonce plus whatever metadata the
// client chose to report about itself.
type HandshakeConfirm struct {
	EchoNonce       string `json:"echoNonce"`
	ServerVersion   string `json:"serverVersion"`
	ClientTimestamp int64  `json:"clientTimestamp"`
	Browser         string `json:"browser"`
	Platform        string `json:"platform"`
	Language        string `json:"language"`
	Vendor          string `json:"vendor"`
}
