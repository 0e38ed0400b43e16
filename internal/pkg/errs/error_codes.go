/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Content and Community Business Logic Errors
const (
	// ErrPostNotFound indicates that the referenced feed post does not exist.
	ErrPostNotFound = 2101

	// ErrProgramNotFound indicates that the referenced health program does not exist.
	ErrProgramNotFound = 2102

	// ErrProgramAtCapacity indicates that the program being joined has reached its participant limit.
	ErrProgramAtCapacity = 2103

	// ErrDiseaseNotFound indicates that the referenced disease record does not exist.
	ErrDiseaseNotFound = 2104

	// ErrConsultNotFound indicates that the referenced consultation session does not exist.
	ErrConsultNotFound = 2201

	// ErrMessageContentTooLong indicates that the message content exceeded the maximum length limit.
	ErrMessageContentTooLong = 2202

	// ErrSpecialistUnavailable indicates the selected specialist category is currently offline.
	ErrSpecialistUnavailable = 2203

	// ErrIntakeIncomplete indicates the consultation intake is missing name or symptoms.
	ErrIntakeIncomplete = 2204

	// ErrDraftNeedsImage indicates an attempt to advance the post composer with no selected image.
	ErrDraftNeedsImage = 2301

	// ErrInvalidViewTransition indicates a screen state change that the view machine does not allow.
	ErrInvalidViewTransition = 2302

	// ErrImageIndexInvalid indicates the referenced draft image slot does not exist.
	ErrImageIndexInvalid = 2303

	// ErrFileSizeTooLarge indicates an image exceeding the upload size limit.
	ErrFileSizeTooLarge = 2304

	// ErrFileTypeInvalid indicates an image whose extension or MIME type is not allowed.
	ErrFileTypeInvalid = 2305

	// ErrImageNotUploaded indicates an attach attempt for a key whose object never reached storage.
	ErrImageNotUploaded = 2306

	// ErrPlanNotFound indicates that the referenced premium plan does not exist.
	ErrPlanNotFound = 2401
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrUnauthorized indicates the action requires an authenticated session.
	// The response carries a redirect target so clients can route to sign-in.
	ErrUnauthorized = 3001

	// ErrAlreadyLoggedIn indicates a register/login attempt from an authenticated session.
	ErrAlreadyLoggedIn = 3002

	// ErrInvalidEmail indicates the supplied email address failed validation.
	ErrInvalidEmail = 3003

	// ErrInvalidPassword indicates the supplied password failed validation.
	ErrInvalidPassword = 3004

	// ErrEmailTaken indicates an account already exists for the supplied email.
	ErrEmailTaken = 3005

	// ErrInvalidCredentials indicates the email/password pair did not match an account.
	ErrInvalidCredentials = 3006

	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = 3007
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates the object storage backend rejected a presign request.
	ErrFileStorageFailed = 5001

	// ErrDatabaseUnavailable indicates the identity database could not be reached.
	ErrDatabaseUnavailable = 5002
)
