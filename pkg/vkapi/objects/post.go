package objects

import (
	"encoding/json"
	"errors"
)

// Post is a wall post. See https://dev.vk.com/reference/objects/post.
type Post struct {
	ID Integer `json:"id"`

	OwnerID *Integer `json:"owner_id"`
	ToID    *Integer `json:"to_id"`

	FromID       Integer           `json:"from_id"`
	CreatedBy    Integer           `json:"created_by"`
	Date         Integer           `json:"date"`
	Text         string            `json:"text"`
	ReplyOwnerID Integer           `json:"reply_owner_id"`
	ReplyPostID  Integer           `json:"reply_post_id"`
	FriendsOnly  *Integer          `json:"friends_only"`
	Comments     Comments          `json:"comments"`
	Likes        Likes             `json:"likes"`
	Reposts      Reposts           `json:"reposts"`
	Views        Views             `json:"views"`
	PostType     string            `json:"post_type"`
	PostSource   *PostSource       `json:"post_source"`
	Attachments  *[]WallAttachment `json:"attachments"`
	Geo          Geo               `json:"geo"`
	SignerID     *Integer          `json:"signer_id"`
	CopyHistory  *[]Post           `json:"copy_history"`
	CanPin       Integer           `json:"can_pin"`
	CanDelete    Integer           `json:"can_delete"`
	CanEdit      Integer           `json:"can_edit"`
	CanOpen      Boolean           `json:"can_open"`
	CanClose     Boolean           `json:"can_close"`
	IsPinned     Integer           `json:"is_pinned"`
	MarkedAsAds  Integer           `json:"marked_as_ads"`
	IsFavorite   *Boolean          `json:"is_favorite"`
}

// Comments contains the comments info of a post.
type Comments struct {
	Count         Integer `json:"count"`
	CanPost       Integer `json:"can_post"`
	GroupsCanPost Integer `json:"groups_can_post"`
}

// Likes contains the likes info of a post.
type Likes struct {
	Count      Integer `json:"count"`
	UserLikes  Integer `json:"user_likes"`
	CanLike    Integer `json:"can_like"`
	CanPublish Integer `json:"can_publish"`
}

// Reposts contains the reposts info of a post.
type Reposts struct {
	Count        Integer `json:"count"`
	UserReposted Integer `json:"user_reposted"`
}

// Views contains the views info of a post.
type Views struct {
	Count Integer `json:"count"`
}

// PostSource tells how a post was created.
type PostSource struct {
	Type     string  `json:"type"`
	Platform *string `json:"platform"`
	Data     *string `json:"data"`
	URL      *string `json:"url"`
}

// Geo is the location attached to a post.
type Geo struct {
	Type        string `json:"type"`
	Coordinates string `json:"coordinates"`
	Place       *Place `json:"place"`
}

// Place is a named location.
type Place struct {
	ID      Integer  `json:"id"`
	Title   string   `json:"title"`
	Country *Integer `json:"country"`
	City    *Integer `json:"city"`
}

// WallAttachment is an attachment of a post. VK encodes the attachment
// as {"type": T, T: {...}}; Object contains the raw JSON under T.
type WallAttachment struct {
	Type   string
	Object json.RawMessage
}

// ErrInvalidWallAttachment indicates that an attachment lacks its
// type or the object under the type key.
var ErrInvalidWallAttachment = errors.New("objects: invalid wall attachment")

// UnmarshalJSON implements json.Unmarshaler.
func (wa *WallAttachment) UnmarshalJSON(data []byte) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	var kind string
	if err := json.Unmarshal(object["type"], &kind); err != nil || kind == "" {
		return ErrInvalidWallAttachment
	}
	payload, found := object[kind]
	if !found {
		return ErrInvalidWallAttachment
	}
	wa.Type, wa.Object = kind, payload
	return nil
}

// MarshalJSON implements json.Marshaler.
func (wa WallAttachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":  wa.Type,
		wa.Type: wa.Object,
	})
}
