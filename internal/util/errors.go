package util

import "errors"

var (
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrStudentNotFound     = errors.New("student not found")
	ErrLoginAlreadyEnabled = errors.New("login already enabled")
	ErrLoginNotEnabled     = errors.New("login not enabled")
	ErrEnrollmentTaken     = errors.New("enrollment number already exists")

	ErrTradeNotFound   = errors.New("trade not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrFeeNotFound     = errors.New("fee record not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrEnquiryNotFound = errors.New("enquiry not found")

	ErrExamNotFound         = errors.New("exam not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrOptionNotFound       = errors.New("option not found")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrExamAlreadySubmitted = errors.New("exam already submitted")
	ErrOptionsRequired      = errors.New("options are required")

	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrCertificateCodeTaken = errors.New("certificate code already exists")

	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrMediaNotFound   = errors.New("media item not found")

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
