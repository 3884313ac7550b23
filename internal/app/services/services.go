package services

// Services defined in this package:
// - CourseService: CRUD and search over the course catalog, including
//   credit-hour validation and prerequisite-code resolution
