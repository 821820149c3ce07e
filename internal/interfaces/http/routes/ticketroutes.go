package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Action and sub-resource routes before the bare /:id routes.
		tickets.POST("/:id/assign",
			authorization.RequireAdmin(),
			config.TicketHandler.AssignTechnician)
		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.GET("/:id/history", config.TicketHandler.GetHistory)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/attachments", config.TicketHandler.UploadAttachment)
		tickets.GET("/:id/attachments", config.TicketHandler.ListAttachments)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id", config.TicketHandler.DownloadAttachment)
	}
}
