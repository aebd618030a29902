package constants

// Formatting
const TimeFormat = "2006-01-02 15:04:05"

// Course structure
const TotalLessons = 10
const CoreLessonCount = 4

// Simulated repository defaults
const DefaultRepoName = "my-project"
const DefaultRemote = "origin"
const DefaultAuthor = "Student <student@example.com>"

// Animation speed multipliers
const DefaultSpeed = 1.0
const FastSpeed = 3.0

// CLI messages
const UsageMessage = "Usage: gitlearn [--fast] [--lesson <number>]"
