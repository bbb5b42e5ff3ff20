package logging

// Shortcuts for event types.
// Any event that happens multiple times should have a single character representation
const (
	ServiceStarted      = "start"
	ServiceStopped      = "stop"
	UnitAdded           = "A"
	DuplicatedUnit      = "D"
	UnknownParents      = "Q"
	UnitRejected        = "J"
	ElectionNotReady    = "W"
	ElectionStarted     = "S"
	CandidateEliminated = "X"
	HeadElected         = "H"
	MemoryUsage         = "M"
)

// eventTypeDict maps short event names to human readable form
var eventTypeDict = map[string]string{
	UnitAdded:           "unit added to the dag",
	DuplicatedUnit:      "unit already in the dag",
	UnknownParents:      "unit with unknown parents",
	UnitRejected:        "unit rejected",
	ElectionNotReady:    "not enough rounds to start the election",
	ElectionStarted:     "election for a round started",
	CandidateEliminated: "candidate eliminated",
	HeadElected:         "head elected",
	MemoryUsage:         "memory usage",
}

// Field names
const (
	Time      = "T"
	Level     = "L"
	Event     = "E"
	Service   = "S"
	Size      = "N"
	Round     = "R"
	Creator   = "C"
	Hash      = "#"
	Highest   = "U"
	Candidate = "K"
	Memory    = "O"
	Reason    = "Y"
)

// fieldNameDict maps short field names to human readable form
var fieldNameDict = map[string]string{
	Time:      "time",
	Level:     "level",
	Event:     "event",
	Service:   "service",
	Size:      "size",
	Round:     "round",
	Creator:   "creator",
	Hash:      "hash",
	Highest:   "highest",
	Candidate: "candidate",
	Memory:    "memory",
	Reason:    "reason",
}

// Service types
const (
	ElectionService int = iota
	ExtenderService
	MemLogService
)

// serviceTypeDict maps integer service types to human readable names
var serviceTypeDict = map[int]string{
	ElectionService: "ELECT",
	ExtenderService: "EXTEND",
	MemLogService:   "MEMLOG",
}

// Genesis was better with Phil Collins
const Genesis = "genesis"
