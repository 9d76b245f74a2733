package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// MessageResponse is the wire shape of a chat message exchanged over a link.
type MessageResponse struct {
	ID             int64      `json:"id"`
	LinkID         int64      `json:"link_id"`
	SenderID       int64      `json:"sender_id"`
	ReceiverID     *int64     `json:"receiver_id,omitempty"`
	SalesRepID     *int64     `json:"sales_rep_id,omitempty"`
	Content        string     `json:"content"`
	MessageType    string     `json:"message_type"`
	AttachmentURL  *string    `json:"attachment_url,omitempty"`
	AttachmentType *string    `json:"attachment_type,omitempty"`
	ProductID      *int64     `json:"product_id,omitempty"`
	OrderID        *int64     `json:"order_id,omitempty"`
	IsRead         bool       `json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// MessageCreateRequest posts a message into a link conversation.
type MessageCreateRequest struct {
	LinkID         int64   `json:"link_id"`
	Content        *string `json:"content,omitempty"`
	MessageType    *string `json:"message_type,omitempty"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	AttachmentType *string `json:"attachment_type,omitempty"`
	ProductID      *int64  `json:"product_id,omitempty"`
	OrderID        *int64  `json:"order_id,omitempty"`
	ReceiverID     *int64  `json:"receiver_id,omitempty"`
}

// MessageListOptions pages through a conversation.
type MessageListOptions struct {
	Skip  *int
	Limit *int
}

// ListMessages returns the messages of one link conversation.
func (c *Client) ListMessages(ctx context.Context, linkID int64, opts *MessageListOptions) ([]MessageResponse, error) {
	values := url.Values{}
	values.Set("link_id", strconv.FormatInt(linkID, 10))
	if opts != nil {
		setInt(values, "skip", opts.Skip)
		setInt(values, "limit", opts.Limit)
	}

	var out []MessageResponse
	if err := c.get(ctx, "/messages", values, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateMessage posts a message.
func (c *Client) CreateMessage(ctx context.Context, req MessageCreateRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.post(ctx, "/messages", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// MarkMessageRead flags one message as read by the caller.
func (c *Client) MarkMessageRead(ctx context.Context, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.put(ctx, fmt.Sprintf("/messages/%d/read", id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
