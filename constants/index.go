package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"

	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_NOT_FOUND            = "Record not found"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"
	NOT_ADMIN                  = "Admin permission required"

	MISSING_LOGIN_INPUT = "Username and password are required"
	INVALID_USERNAME    = "Username does not exist"
	INVALID_PASSWORD    = "Wrong password"
	ACCOUNT_NOT_ACTIVE  = "Account is deactivated"

	COUNTRY_HAS_CITIES = "Country still has cities and cannot be deleted"
	CITY_HAS_AIRPORTS  = "City still has airports and cannot be deleted"
	HOTEL_HAS_ROOMS    = "Hotel still has rooms and cannot be deleted"

	PACKAGE_STATUS_ACTIVE   = "ACTIVE"
	PACKAGE_STATUS_INACTIVE = "INACTIVE"

	HOTEL_STATUS_OPEN        = "OPEN"
	HOTEL_STATUS_MAINTENANCE = "MAINTENANCE"
	HOTEL_STATUS_CLOSED      = "CLOSED"

	INQUIRY_STATUS_NEW       = "NEW"
	INQUIRY_STATUS_CONTACTED = "CONTACTED"
	INQUIRY_STATUS_CLOSED    = "CLOSED"

	BULK_ACTION_ACTIVATE   = "activate"
	BULK_ACTION_DEACTIVATE = "deactivate"
	BULK_ACTION_DELETE     = "delete"
)
