package testutil

// Sample JSON responses for API testing

// SampleTimetableResponse is a minimal valid timetable response
const SampleTimetableResponse = `{
	"departures": ["05:12", "05:24", "12:10", "12:30", "23:58"]
}`

// SampleTimetableMalformed mixes valid and unparseable departure times
const SampleTimetableMalformed = `{
	"departures": ["12:10", "not-a-time", "25:00", "12:61", "12:30"]
}`

// SampleTimetableEmpty has no departures left for the day
const SampleTimetableEmpty = `{
	"departures": []
}`

// SampleGuidanceResponse is a complete guidance response
const SampleGuidanceResponse = `{
	"message": "You are doing great. The station is close.",
	"steps": [
		"Walk to the Shinjuku east exit.",
		"Board the next inner-loop train.",
		"Get off at the first stop and turn left."
	],
	"toiletInfo": "Inside the gate, near platform 14",
	"minutes": 7.5
}`

// SampleGuidancePartial omits the steps and facility text
const SampleGuidancePartial = `{
	"message": "Hang in there.",
	"steps": [],
	"toiletInfo": "",
	"minutes": 6
}`

// SampleFixResponse is a successful ip-api style geolocation fix
const SampleFixResponse = `{
	"status": "success",
	"lat": 35.6909,
	"lon": 139.7003,
	"accuracy": 120
}`

// SampleFixCoarse is a fix without an accuracy radius (city-level)
const SampleFixCoarse = `{
	"status": "success",
	"lat": 35.6812,
	"lon": 139.7671
}`

// SampleFixFailure is a failed geolocation lookup
const SampleFixFailure = `{
	"status": "fail",
	"lat": 0,
	"lon": 0
}`

// SampleEmptyResponse is an empty JSON response
const SampleEmptyResponse = `{}`

// SampleErrorResponse is a sample error response
const SampleErrorResponse = `{
	"error": {
		"code": "LINE_NOT_FOUND",
		"message": "Line not found"
	}
}`
