package handlers

import (
	userRepoPkg "studyhub/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth         *AuthHandler
	User         *UserHandler
	Notification *NotificationHandler
	Assignment   *AssignmentHandler
	Reminder     *ReminderHandler
	Catalog      *CatalogHandler
	Application  *ApplicationHandler
	Billing      *BillingHandler
	Storage      *StorageHandler
	Admin        *AdminHandler
}
