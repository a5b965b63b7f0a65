package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"contactbook/internal/domain/entity"
	"contactbook/internal/errors"
)

// AttributeRequestID carries the originating request ID across the queue.
const AttributeRequestID = "request_id"

// PushMessage is the body Pub/Sub posts to push endpoints.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeMail extracts the mail payload.
func (m *PushMessage) DecodeMail() (*entity.MailMessage, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var msg entity.MailMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(err, "unmarshal mail message")
	}
	if !msg.Kind.IsValid() {
		return nil, errors.Errorf("unknown mail kind %q", msg.Kind)
	}

	return &msg, nil
}

// RequestID returns the request_id attribute, if any.
func (m *PushMessage) RequestID() string {
	return m.Message.Attributes[AttributeRequestID]
}

func mailAttributes(requestID string, msg *entity.MailMessage) map[string]string {
	attributes := map[string]string{
		"kind": string(msg.Kind),
	}
	if requestID != "" {
		attributes[AttributeRequestID] = requestID
	}

	return attributes
}
