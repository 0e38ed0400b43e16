/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Content and Community Business Logic Errors
	ErrPostNotFound:          {Code: ErrPostNotFound, Message: "Post not found.", Status: http.StatusNotFound},
	ErrProgramNotFound:       {Code: ErrProgramNotFound, Message: "Program not found.", Status: http.StatusNotFound},
	ErrProgramAtCapacity:     {Code: ErrProgramAtCapacity, Message: "This program is full."},
	ErrDiseaseNotFound:       {Code: ErrDiseaseNotFound, Message: "Disease record not found.", Status: http.StatusNotFound},
	ErrConsultNotFound:       {Code: ErrConsultNotFound, Message: "Consultation not found.", Status: http.StatusNotFound},
	ErrMessageContentTooLong: {Code: ErrMessageContentTooLong, Message: "Message is too long."},
	ErrSpecialistUnavailable: {Code: ErrSpecialistUnavailable, Message: "This specialist is currently offline."},
	ErrIntakeIncomplete:      {Code: ErrIntakeIncomplete, Message: "Please provide your name and symptoms."},
	ErrDraftNeedsImage:       {Code: ErrDraftNeedsImage, Message: "Select at least one image to continue."},
	ErrInvalidViewTransition: {Code: ErrInvalidViewTransition, Message: "That action is not available right now."},
	ErrImageIndexInvalid:     {Code: ErrImageIndexInvalid, Message: "Invalid image selection."},
	ErrFileSizeTooLarge:      {Code: ErrFileSizeTooLarge, Message: "File is too large."},
	ErrFileTypeInvalid:       {Code: ErrFileTypeInvalid, Message: "This file type is not supported."},
	ErrImageNotUploaded:      {Code: ErrImageNotUploaded, Message: "Upload the image before attaching it."},
	ErrPlanNotFound:          {Code: ErrPlanNotFound, Message: "Plan not found.", Status: http.StatusNotFound},

	// 3xxx: User, Session, and Security Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrInvalidEmail:       {Code: ErrInvalidEmail, Message: "Invalid email address."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Invalid password."},
	ErrEmailTaken:         {Code: ErrEmailTaken, Message: "An account already exists for this email."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect email or password."},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "Account not found.", Status: http.StatusNotFound},

	// 5xxx: Internal System Errors
	ErrUnknown:             {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrFileStorageFailed:   {Code: ErrFileStorageFailed, Message: "Image upload failed. Please try again."},
	ErrDatabaseUnavailable: {Code: ErrDatabaseUnavailable, Message: "Service temporarily unavailable.", Status: http.StatusServiceUnavailable},
}
