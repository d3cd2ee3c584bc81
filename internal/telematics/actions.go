// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

// Remote action names, dispatched via the transport's svc parameter.
// Keeping them in one table makes the call recorder complete and spares
// facades from string literals.
const (
	ActionTokenLogin = "token_login"
	ActionLogout     = "core_logout"

	ActionSearchItems = "core_search_items"
	ActionSearchItem  = "core_search_item"
	ActionHwCommands  = "core_get_hw_cmds"

	ActionCreateUnit         = "core_create_unit"
	ActionCreateUnitGroup    = "core_create_unit_group"
	ActionCreateUser         = "core_create_user"
	ActionCreateResource     = "core_create_resource"
	ActionCreateRoute        = "core_create_route"
	ActionCreateRetranslator = "core_create_retranslator"

	ActionUpdateName           = "item_update_name"
	ActionDeleteItem           = "item_delete_item"
	ActionUpdateCustomField    = "item_update_custom_field"
	ActionUpdateAdminField     = "item_update_admin_field"
	ActionUpdateCustomProperty = "item_update_custom_property"
	ActionUpdateProfileField   = "item_update_profile_field"
	ActionCheckAccessors       = "core_check_accessors"

	ActionExecCommand          = "unit_exec_cmd"
	ActionUpdateAccessPassword = "unit_update_access_password"
	ActionSetActive            = "unit_set_active"
	ActionUpdatePhone          = "unit_update_phone"

	ActionUpdateGroupUnits = "unit_group_update_units"

	ActionUpdateItemAccess = "user_update_item_access"
	ActionUpdateUserFlags  = "user_update_user_flags"
	ActionUpdatePassword   = "user_update_password"
	ActionItemsAccess      = "user_get_items_access"

	ActionCreateAccount = "account_create_account"
	ActionAccountFlags  = "account_update_flags"
	ActionMinimumDays   = "account_update_min_days"
	ActionDoPayment     = "account_do_payment"

	ActionUpdateZone         = "resource_update_zone"
	ActionUpdateNotification = "resource_update_notification"
	ActionNotificationData   = "resource_get_notification_data"
	ActionUnitDrivers        = "resource_get_unit_drivers"
	ActionDriverBindings     = "resource_get_driver_bindings"

	ActionCreateMessagesLayer = "render_create_messages_layer"
	ActionEnableLayer         = "render_enable_layer"
	ActionRemoveLayer         = "render_remove_layer"
	ActionSetLocale           = "render_set_locale"
)
