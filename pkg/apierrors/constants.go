package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgInvalidTaskView    = "invalidTaskView"
	MsgInvalidPreference  = "invalidPreference"
	MsgTaskNotFound       = "taskNotFound"
	MsgStepNotFound       = "stepNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgInvalidCredentials = "invalidCredentials"
	MsgDuplicateUser      = "duplicateUser"
	MsgFailAuth           = "failAuth"
	MsgFailWeather        = "failWeather"
)
