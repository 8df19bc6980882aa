package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProfileNotFound = errors.New("user profile not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrTokenNotFound = errors.New("token not found")
var ErrTokenExpired = errors.New("token expired")
var ErrCourseNotFound = errors.New("course not found")
var ErrCourseNotPublished = errors.New("course not published")
var ErrNotEnrolled = errors.New("user is not enrolled in course")
var ErrAlreadyEnrolled = errors.New("user is already enrolled in course")
var ErrLessonNotFound = errors.New("lesson not found in course")
