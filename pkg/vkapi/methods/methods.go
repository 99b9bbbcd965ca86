// Package methods is the registration table of VK methods.
//
// VK method names are "<category>.<name>" in mixedCase. [Category.Method]
// builds such a name from Go-friendly snake_case names, and this package
// also declares typed [vkapi.Method] values for the methods whose response
// shapes are defined by the objects package. Any other method can be called
// with [vkapi.Call] or [*vkapi.Client.CallMethod].
package methods

import (
	"strings"
	"unicode"

	"github.com/vkbind/vk/pkg/vkapi"
	"github.com/vkbind/vk/pkg/vkapi/objects"
)

// Category is a VK method category (e.g., "wall").
type Category string

// Method returns the full method name for the given function name
// written either in snake_case or in mixedCase. A trailing underscore is
// dropped, so that Photos.Method("move_") is "photos.move".
func (c Category) Method(funcName string) string {
	return string(c) + "." + mixedCase(funcName)
}

// mixedCase converts snake_case to mixedCase.
func mixedCase(name string) string {
	var (
		sb    strings.Builder
		upper bool
	)
	for _, r := range strings.Trim(name, "_") {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// All the VK method categories.
const (
	Account       = Category("account")
	Ads           = Category("ads")
	AppWidgets    = Category("appWidgets")
	Apps          = Category("apps")
	Auth          = Category("auth")
	Board         = Category("board")
	Database      = Category("database")
	Docs          = Category("docs")
	Fave          = Category("fave")
	Friends       = Category("friends")
	Gifts         = Category("gifts")
	Groups        = Category("groups")
	Leads         = Category("leads")
	Likes         = Category("likes")
	Market        = Category("market")
	Messages      = Category("messages")
	Newsfeed      = Category("newsfeed")
	Notes         = Category("notes")
	Notifications = Category("notifications")
	Orders        = Category("orders")
	Pages         = Category("pages")
	Photos        = Category("photos")
	Places        = Category("places")
	Polls         = Category("polls")
	Search        = Category("search")
	Secure        = Category("secure")
	Stats         = Category("stats")
	Status        = Category("status")
	Storage       = Category("storage")
	Stories       = Category("stories")
	Streaming     = Category("streaming")
	Users         = Category("users")
	Utils         = Category("utils")
	Video         = Category("video")
	Wall          = Category("wall")
	Widgets       = Category("widgets")
)

// Categories returns all the VK method categories.
func Categories() []Category {
	return []Category{
		Account, Ads, AppWidgets, Apps, Auth, Board, Database, Docs, Fave,
		Friends, Gifts, Groups, Leads, Likes, Market, Messages, Newsfeed,
		Notes, Notifications, Orders, Pages, Photos, Places, Polls, Search,
		Secure, Stats, Status, Storage, Stories, Streaming, Users, Utils,
		Video, Wall, Widgets,
	}
}

// Execute runs a VKScript program (the method has no category).
var Execute = vkapi.NewMethod[vkapi.Value]("execute")

var (
	// LikesAdd is likes.add.
	LikesAdd = vkapi.NewMethod[objects.LikesResponse](Likes.Method("add"))

	// LikesDelete is likes.delete.
	LikesDelete = vkapi.NewMethod[objects.LikesResponse](Likes.Method("delete"))

	// UsersGet is users.get.
	UsersGet = vkapi.NewMethod[[]objects.User](Users.Method("get"))

	// UtilsGetServerTime is utils.getServerTime.
	UtilsGetServerTime = vkapi.NewMethod[objects.Integer](Utils.Method("get_server_time"))

	// WallDelete is wall.delete.
	WallDelete = vkapi.NewMethod[objects.Integer](Wall.Method("delete"))

	// WallGet is wall.get.
	WallGet = vkapi.NewMethod[objects.ItemsResponse[objects.Post]](Wall.Method("get"))

	// WallGetByID is wall.getById.
	WallGetByID = vkapi.NewMethod[objects.ItemsResponse[objects.Post]](Wall.Method("get_by_id"))

	// WallPost is wall.post.
	WallPost = vkapi.NewMethod[objects.WallPostResponse](Wall.Method("post"))
)
