package constants

// Telegram poll limits.
const (
	MinOptions = 2
	MaxOptions = 10
)

const MsgStart = "Hi! I'm the Sunday School Poll Bot. " +
	"I can help you create questions and post them as quiz polls in your group.\n\n" +
	"Commands:\n" +
	"/newquestion - create a new question (private chat only)\n" +
	"/results - view results of your posted questions\n" +
	"/register - register this group (group chat only)\n" +
	"/close - close your latest poll\n" +
	"/cancel - cancel question creation"

const MsgHelp = "Commands:\n" +
	"/newquestion - create a new question (private chat only)\n" +
	"/results - view results of your posted questions\n" +
	"/register - register this group (group chat only)\n" +
	"/close - close your latest poll\n" +
	"/cancel - cancel question creation"

const (
	MsgUnknownCommand = "Unknown command. See /help for the list of commands."
	MsgNoPolls        = "You haven't posted any polls yet."
	MsgNoGroups       = "No groups registered. Please use /register in a group first."
)
