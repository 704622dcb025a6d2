package api

import "github.com/gofiber/fiber/v2"

type chatInput struct {
	Content string `json:"content" form:"content"`
}

func (handler *Handler) SendChatMessage(c *fiber.Ctx) error {
	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	reply, err := handler.chatService.Send(c.UserContext(), currentSession(c), input.Content, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "send_chat_message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

func (handler *Handler) GetChatHistory(c *fiber.Ctx) error {
	handler.ensureDependencies()
	history, err := handler.chatService.History(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "chat_history", err)
	}
	return c.JSON(history)
}
