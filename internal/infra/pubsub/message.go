package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute names set on every order line message.
const (
	AttrEventID    = "event_id"
	AttrMerchantID = "merchant_id"
	AttrRequestID  = "request_id"
)

// eventMessage is what every transport sends for one OrderLineEvent.
type eventMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newEventMessage(event *service.OrderLineEvent) (eventMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return eventMessage{}, errors.Wrap(err, "failed to encode order line event")
	}

	merchantID := strconv.FormatInt(event.MerchantID, 10)
	attributes := map[string]string{
		AttrEventID:    event.EventID,
		AttrMerchantID: merchantID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return eventMessage{
		data:       data,
		attributes: attributes,
		// One key per merchant keeps a merchant's notifications in order.
		orderingKey: "merchant-" + merchantID,
	}, nil
}

// PushMessage is the body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newPushMessage(msg eventMessage, messageID, subscription string, publishedAt time.Time) PushMessage {
	var push PushMessage
	push.Subscription = subscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = messageID
	push.Message.OrderingKey = msg.orderingKey
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return push
}

// Event decodes the order line event carried by the push message.
func (m *PushMessage) Event() (*service.OrderLineEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.OrderLineEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an order line event")
	}

	return &event, nil
}
