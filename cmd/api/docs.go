package main

// @title Daycast API
// @version 1.0
// @description Daily weather screen for the device's current location, with a single alarm.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
