package routes

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/src/controllers"
	"socialnet/src/middleware"
)

// FriendRoutes sets up friendship routes for requests, request listings, and the friends list
func FriendRoutes(app *fiber.App, ctrl *controllers.FriendController) {
	friend := app.Group("/api/v1/friends", middleware.ProtectRoute)

	friend.Post("/requests/:userId", ctrl.SendFriendRequest)
	friend.Put("/requests/:requestId/accept", ctrl.AcceptFriendRequest)
	friend.Put("/requests/:requestId/reject", ctrl.RejectFriendRequest)
	friend.Delete("/requests/:requestId", ctrl.CancelFriendRequest)
	friend.Get("/requests/sent", ctrl.GetSentRequests)
	friend.Get("/requests/received", ctrl.GetReceivedRequests)
	friend.Get("/", ctrl.GetFriends)
	friend.Delete("/:userId", ctrl.RemoveFriend)
}
