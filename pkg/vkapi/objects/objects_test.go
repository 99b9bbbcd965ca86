package objects_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vkbind/vk/pkg/vkapi"
	"github.com/vkbind/vk/pkg/vkapi/objects"
)

func TestBoolean(t *testing.T) {
	t.Run("UnmarshalJSON", func(t *testing.T) {
		cases := map[string]objects.Boolean{
			"0":     false,
			"1":     true,
			"false": false,
			"true":  true,
		}
		for input, expect := range cases {
			var b objects.Boolean
			if err := json.Unmarshal([]byte(input), &b); err != nil {
				t.Fatal(input, err)
			}
			if b != expect {
				t.Fatal(input, "expected", expect, "got", b)
			}
		}
	})

	t.Run("UnmarshalJSON with invalid input", func(t *testing.T) {
		for _, input := range []string{`2`, `"1"`, `null`, `{}`} {
			b := objects.Boolean(true)
			if err := json.Unmarshal([]byte(input), &b); err == nil {
				t.Fatal(input, "expected an error")
			}
		}
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		data, err := json.Marshal([]objects.Boolean{true, false})
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `[1,0]` {
			t.Fatal("unexpected JSON", string(data))
		}
	})
}

// wallGetResponse is a trimmed down wall.get payload.
const wallGetResponse = `{"count":1,"items":[{
	"id":42,"owner_id":-1,"from_id":-1,"created_by":100,"date":1700000000,
	"text":"hello","reply_owner_id":0,"reply_post_id":0,
	"comments":{"count":3,"can_post":1,"groups_can_post":1},
	"likes":{"count":10,"user_likes":0,"can_like":1,"can_publish":1},
	"reposts":{"count":2,"user_reposted":0},"views":{"count":1000},
	"post_type":"post","post_source":{"type":"api","platform":"android"},
	"attachments":[{"type":"photo","photo":{"id":7,"owner_id":-1}}],
	"geo":{"type":"point","coordinates":"59.9 30.3"},
	"can_pin":1,"can_delete":1,"can_edit":0,"can_open":0,"can_close":1,
	"is_pinned":0,"marked_as_ads":0,"track_code":"ignored"
}]}`

func TestPostDecode(t *testing.T) {
	t.Run("with a complete post", func(t *testing.T) {
		resp, err := vkapi.Decode[objects.ItemsResponse[objects.Post]](vkapi.Value(wallGetResponse))
		if err != nil {
			t.Fatal(err)
		}
		if resp.Count != 1 || len(resp.Items) != 1 {
			t.Fatal("unexpected response", resp)
		}
		post := resp.Items[0]
		if post.ID != 42 || post.Text != "hello" || *post.OwnerID != -1 {
			t.Fatal("unexpected post", post)
		}
		if post.ToID != nil || post.SignerID != nil || post.CopyHistory != nil || post.IsFavorite != nil {
			t.Fatal("absent optional fields must be nil")
		}
		if !post.CanClose || post.CanOpen {
			t.Fatal("unexpected booleans", post.CanOpen, post.CanClose)
		}
		if diff := cmp.Diff(objects.Likes{Count: 10, CanLike: 1, CanPublish: 1}, post.Likes); diff != "" {
			t.Fatal(diff)
		}
		if post.PostSource == nil || *post.PostSource.Platform != "android" || post.PostSource.URL != nil {
			t.Fatal("unexpected post source", post.PostSource)
		}
		if post.Attachments == nil || len(*post.Attachments) != 1 {
			t.Fatal("unexpected attachments", post.Attachments)
		}
		attachment := (*post.Attachments)[0]
		if attachment.Type != "photo" || string(attachment.Object) != `{"id":7,"owner_id":-1}` {
			t.Fatal("unexpected attachment", attachment)
		}
	})

	t.Run("with a missing required field", func(t *testing.T) {
		data := strings.Replace(wallGetResponse, `"post_type":"post",`, "", 1)
		_, err := vkapi.Decode[objects.ItemsResponse[objects.Post]](vkapi.Value(data))
		var merr *vkapi.MissingFieldError
		if !errors.As(err, &merr) || merr.Path != "items[0].post_type" {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("with a missing field of a nested object", func(t *testing.T) {
		data := strings.Replace(wallGetResponse, `"views":{"count":1000}`, `"views":{}`, 1)
		_, err := vkapi.Decode[objects.ItemsResponse[objects.Post]](vkapi.Value(data))
		var merr *vkapi.MissingFieldError
		if !errors.As(err, &merr) || merr.Path != "items[0].views.count" {
			t.Fatal("not the error we expected", err)
		}
	})
}

func TestUserDecode(t *testing.T) {
	data := `[{"id":1,"first_name":"Pavel","last_name":"Durov","is_closed":false,
		"city":{"id":2,"title":"Saint Petersburg"},"online":0}]`
	users, err := vkapi.Decode[[]objects.User](vkapi.Value(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatal("unexpected number of users", len(users))
	}
	user := users[0]
	if user.FirstName != "Pavel" || user.Deactivated != nil || user.Photo100 != nil {
		t.Fatal("unexpected user", user)
	}
	if diff := cmp.Diff(&objects.City{ID: 2, Title: "Saint Petersburg"}, user.City); diff != "" {
		t.Fatal(diff)
	}
	if user.Online == nil || bool(*user.Online) {
		t.Fatal("unexpected online", user.Online)
	}
}

func TestWallAttachment(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		input := `{"type":"link","link":{"url":"https://vk.com"}}`
		var wa objects.WallAttachment
		if err := json.Unmarshal([]byte(input), &wa); err != nil {
			t.Fatal(err)
		}
		if wa.Type != "link" {
			t.Fatal("unexpected type", wa.Type)
		}
		data, err := json.Marshal(wa)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `{"link":{"url":"https://vk.com"},"type":"link"}` {
			t.Fatal("unexpected JSON", string(data))
		}
	})

	t.Run("with invalid attachments", func(t *testing.T) {
		inputs := []string{
			`{"photo":{"id":1}}`,
			`{"type":"","photo":{"id":1}}`,
			`{"type":1}`,
			`{"type":"photo","video":{"id":1}}`,
		}
		for _, input := range inputs {
			var wa objects.WallAttachment
			err := json.Unmarshal([]byte(input), &wa)
			if !errors.Is(err, objects.ErrInvalidWallAttachment) {
				t.Fatal(input, "not the error we expected", err)
			}
		}
	})
}
