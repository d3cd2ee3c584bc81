// terminusgps-go - Multi-Vendor Fleet Integration Library
// Copyright 2026 Terminus GPS
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/terminusgps/terminusgps-go

package telematics

// LoginFlags is the token_login access bitmask.
type LoginFlags uint64

const (
	// LoginOnlineTracking limits the session to live position reads.
	LoginOnlineTracking LoginFlags = 0x01
	// LoginView grants read access to most item data.
	LoginView LoginFlags = 0x02
	// LoginManage grants modification of non-sensitive properties.
	LoginManage LoginFlags = 0x04
	// LoginCommunication grants command execution and messaging.
	LoginCommunication LoginFlags = 0x20
)

// DefaultLoginFlags is the bitmask used when Login is given zero flags:
// view + manage + communication.
const DefaultLoginFlags = LoginView | LoginManage | LoginCommunication

// AccessFlags control the rights one accessor holds on one item.
type AccessFlags uint64

const (
	AccessViewItem            AccessFlags = 0x0001
	AccessViewDetailed        AccessFlags = 0x0002
	AccessManageAccess        AccessFlags = 0x0004
	AccessDeleteItem          AccessFlags = 0x0008
	AccessRenameItem          AccessFlags = 0x0010
	AccessViewCustomFields    AccessFlags = 0x0020
	AccessManageCustomFields  AccessFlags = 0x0040
	AccessEditOtherProperties AccessFlags = 0x0080
	AccessChangeIcon          AccessFlags = 0x0100
	AccessQueryReports        AccessFlags = 0x0200
	AccessEditSubItems        AccessFlags = 0x0400
	AccessManageItemLog       AccessFlags = 0x0800
	AccessViewAdminFields     AccessFlags = 0x1000
	AccessManageAdminFields   AccessFlags = 0x2000

	// Unit-specific bits.
	AccessEditConnectivity AccessFlags = 0x100000
	AccessEditCommands     AccessFlags = 0x200000
	AccessEditTripDetector AccessFlags = 0x400000
)

// Composite masks. The sums are part of the public contract; tests pin
// them to their documented values.
const (
	// AccessUnitBasic (0x333) is the default grant for fleet viewers:
	// view, view detailed, rename, view custom fields, change icon,
	// query reports.
	AccessUnitBasic = AccessViewItem | AccessViewDetailed | AccessRenameItem |
		AccessViewCustomFields | AccessChangeIcon | AccessQueryReports

	// AccessUnitMigration (0x3003ff) extends AccessUnitBasic with the
	// rights needed to move a unit between accounts: manage access,
	// delete, manage custom fields, edit other properties, edit
	// connectivity and commands.
	AccessUnitMigration = AccessUnitBasic | AccessManageAccess | AccessDeleteItem |
		AccessManageCustomFields | AccessEditOtherProperties |
		AccessEditConnectivity | AccessEditCommands

	// AccessResourceBasic (0x73) covers day-to-day resource editing:
	// view, view detailed, rename, view and manage custom fields.
	AccessResourceBasic = AccessViewItem | AccessViewDetailed | AccessRenameItem |
		AccessViewCustomFields | AccessManageCustomFields
)

// DataFlags select the payload richness of item reads.
type DataFlags uint64

const (
	DataBase         DataFlags = 0x01
	DataCustomProps  DataFlags = 0x02
	DataBilling      DataFlags = 0x04
	DataCustomFields DataFlags = 0x08
	DataMessages     DataFlags = 0x10
	DataGUID         DataFlags = 0x20
	DataAdminFields  DataFlags = 0x40
)

// SettingsFlags are user-level behavioral toggles.
type SettingsFlags uint64

const (
	SettingsDisabled             SettingsFlags = 0x01
	SettingsCannotChangePassword SettingsFlags = 0x02
	SettingsCanCreateItems       SettingsFlags = 0x04
	SettingsCannotChangeSettings SettingsFlags = 0x10
	SettingsCanSendSMS           SettingsFlags = 0x20
)

// ItemType is the type tag dispatched on by the factory.
type ItemType string

const (
	TypeResource     ItemType = "resource"
	TypeRetranslator ItemType = "retranslator"
	TypeRoute        ItemType = "route"
	TypeUnit         ItemType = "unit"
	TypeUnitGroup    ItemType = "unit_group"
	TypeUser         ItemType = "user"
	TypeAccount      ItemType = "account"
	TypeGeofence     ItemType = "geofence"
	TypeNotification ItemType = "notification"

	// TypeHardware is registered but not constructable: hardware types
	// are a server-maintained enumeration.
	TypeHardware ItemType = "avl_hw"
)

// Class returns the server-side class name used in searches.
func (t ItemType) Class() string {
	switch t {
	case TypeResource, TypeAccount:
		return "avl_resource"
	case TypeRetranslator:
		return "avl_retranslator"
	case TypeRoute:
		return "avl_route"
	case TypeUnit:
		return "avl_unit"
	case TypeUnitGroup:
		return "avl_unit_group"
	case TypeUser:
		return "user"
	case TypeGeofence:
		return "avl_resource_zone"
	case TypeNotification:
		return "avl_resource_notification"
	case TypeHardware:
		return "avl_hw"
	default:
		return string(t)
	}
}

// ProfileField names the closed set of vehicle-profile fields accepted
// by SetProfileField.
type ProfileField string

const (
	ProfileVehicleType        ProfileField = "vehicle_type"
	ProfileVIN                ProfileField = "vin"
	ProfileRegistrationPlate  ProfileField = "registration_plate"
	ProfileBrand              ProfileField = "brand"
	ProfileModel              ProfileField = "model"
	ProfileYear               ProfileField = "year"
	ProfileColor              ProfileField = "color"
	ProfileEngineModel        ProfileField = "engine_model"
	ProfileEnginePower        ProfileField = "engine_power"
	ProfileEngineDisplacement ProfileField = "engine_displacement"
	ProfilePrimaryFuelType    ProfileField = "primary_fuel_type"
	ProfileCargoType          ProfileField = "cargo_type"
	ProfileCarryingCapacity   ProfileField = "carrying_capacity"
	ProfileWidth              ProfileField = "width"
	ProfileHeight             ProfileField = "height"
	ProfileDepth              ProfileField = "depth"
	ProfileEffectiveCapacity  ProfileField = "effective_capacity"
	ProfileGrossVehicleWeight ProfileField = "gross_vehicle_weight"
	ProfileAxles              ProfileField = "axles"
)

// profileFields is the membership set backing ProfileField.Valid.
var profileFields = map[ProfileField]struct{}{
	ProfileVehicleType: {}, ProfileVIN: {}, ProfileRegistrationPlate: {},
	ProfileBrand: {}, ProfileModel: {}, ProfileYear: {}, ProfileColor: {},
	ProfileEngineModel: {}, ProfileEnginePower: {}, ProfileEngineDisplacement: {},
	ProfilePrimaryFuelType: {}, ProfileCargoType: {}, ProfileCarryingCapacity: {},
	ProfileWidth: {}, ProfileHeight: {}, ProfileDepth: {},
	ProfileEffectiveCapacity: {}, ProfileGrossVehicleWeight: {}, ProfileAxles: {},
}

// Valid reports whether the field name belongs to the closed profile set.
func (p ProfileField) Valid() bool {
	_, ok := profileFields[p]
	return ok
}
