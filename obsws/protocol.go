package obsws

import (
	"encoding/json"
	"fmt"
)

// subprotocol is the websocket subprotocol negotiated with obs-websocket
// servers speaking JSON framing.
const subprotocol = "obswebsocket.json"

// rpcVersion is the obs-websocket RPC version this client implements.
const rpcVersion = 1

// closeAuthenticationFailed is the websocket close code the server sends
// when the Identify authentication string is rejected.
const closeAuthenticationFailed = 4009

// obs-websocket v5 opcodes.
const (
	opHello           = 0
	opIdentify        = 1
	opIdentified      = 2
	opEvent           = 5
	opRequest         = 6
	opRequestResponse = 7
)

// obs-websocket v5 RequestStatus codes relevant to error mapping.
const (
	statusNotReady              = 207
	statusMissingRequestField   = 300
	statusInvalidRequestField   = 400
	statusOutputRunning         = 500
	statusOutputNotRunning      = 501
	statusStudioModeNotActive   = 506
	statusResourceNotFound      = 600
	statusResourceAlreadyExists = 601
	statusInvalidInputKind      = 605
)

// message is the outer envelope of every obs-websocket frame.
type message struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

func newMessage(op int, v any) (message, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return message{}, fmt.Errorf("marshal op %d payload: %w", op, err)
	}
	return message{Op: op, D: d}, nil
}

// helloData is the op 0 payload sent by the server immediately after the
// websocket upgrade. Authentication is nil when the server does not require
// a password.
type helloData struct {
	OBSWebSocketVersion string         `json:"obsWebSocketVersion"`
	RPCVersion          int            `json:"rpcVersion"`
	Authentication      *authChallenge `json:"authentication,omitempty"`
}

type authChallenge struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}

// identifyData is the op 1 payload the client answers the Hello with.
type identifyData struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions,omitempty"`
}

// identifiedData is the op 2 payload confirming a successful handshake.
type identifiedData struct {
	NegotiatedRPCVersion int `json:"negotiatedRpcVersion"`
}

// requestEnvelope is the op 6 payload carrying one outgoing request.
type requestEnvelope struct {
	RequestType string `json:"requestType"`
	RequestID   string `json:"requestId"`
	RequestData any    `json:"requestData,omitempty"`
}

// requestResponse is the op 7 payload carrying the server's answer to one
// request.
type requestResponse struct {
	RequestType   string          `json:"requestType"`
	RequestID     string          `json:"requestId"`
	RequestStatus requestStatus   `json:"requestStatus"`
	ResponseData  json.RawMessage `json:"responseData,omitempty"`
}

type requestStatus struct {
	Result  bool   `json:"result"`
	Code    int    `json:"code"`
	Comment string `json:"comment,omitempty"`
}

// eventMessage is the op 5 payload carrying one server-side event.
type eventMessage struct {
	EventType   string          `json:"eventType"`
	EventIntent int             `json:"eventIntent"`
	EventData   json.RawMessage `json:"eventData,omitempty"`
}
