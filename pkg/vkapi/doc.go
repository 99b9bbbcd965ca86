// Package vkapi is a client for the VK API.
//
// Every VK method is called the same way: the parameters are sent as a
// form to https://api.vk.com/method/<name> and the response body is an
// envelope containing either {"response": ...} or {"error": {...}}.
// [*Client.CallMethod] implements this mechanism and returns the raw
// response payload as a [Value]. [Call], [Decode], and [Method] convert
// the payload into typed results.
//
// Every failure is an [Error] whose concrete type tells where the call
// failed: [*APIError] (reported by VK), [*TransportError] (HTTP exchange),
// [*DecodeError] (unexpected JSON), or [*OtherError] (before sending).
//
// Example:
//
//	client := vkapi.NewClient(token)
//	params := vkapi.NewParams().Set("user_ids", []int{1, 2}).Set("fields", "city")
//	users, err := methods.UsersGet.Call(ctx, client, params)
//	if vkapi.IsAPIError(err, vkapi.ErrCodeAuthFailed) {
//		// ask for a new token
//	}
package vkapi
