package main

// @title Areamap API
// @version 1.0
// @description Vector layer editing with area based coloring, file import and export, and live position tracking.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http
