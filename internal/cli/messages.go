package cli

// Console dialogue.
const (
	msgActionPrompt   = "Input an action (%s):"
	msgInvalidAction  = "The input action is invalid"
	msgPriorityPrompt = "Input the task priority (%s):"
	msgDatePrompt     = "Input the date (yyyy-mm-dd):"
	msgInvalidDate    = "The input date is invalid"
	msgTimePrompt     = "Input the time (hh:mm):"
	msgInvalidTime    = "The input time is invalid"
	msgActionsPrompt  = "Input a new task (enter a blank line to end):"
	msgBlankTask      = "The task is blank"
	msgIndexPrompt    = "Input the task number (1-%d):"
	msgInvalidIndex   = "Invalid task number"
	msgFieldPrompt    = "Input a field to edit (priority, date, time, task):"
	msgInvalidField   = "Invalid field"
	msgTaskChanged    = "The task is changed"
	msgTaskDeleted    = "The task is deleted"
	msgNoTasks        = "No tasks have been input"
	msgExiting        = "Tasklist exiting!"
)
