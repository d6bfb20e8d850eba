package main

// @title Gridcast API
// @version 1.0
// @description Weather query API composing Nominatim geocoding with the National Weather Service.

// @host localhost:8080
// @BasePath /
