package objects

// User is a VK user. See https://dev.vk.com/reference/objects/user.
//
// Only the fields returned without the fields parameter are required.
type User struct {
	ID              Integer  `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Deactivated     *string  `json:"deactivated"`
	IsClosed        *bool    `json:"is_closed"`
	CanAccessClosed *bool    `json:"can_access_closed"`
	ScreenName      *string  `json:"screen_name"`
	Photo100        *string  `json:"photo_100"`
	Sex             *Integer `json:"sex"`
	City            *City    `json:"city"`
	Online          *Boolean `json:"online"`
}

// City is a city in a user profile.
type City struct {
	ID    Integer `json:"id"`
	Title string  `json:"title"`
}
