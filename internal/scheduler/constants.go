package scheduler

const (
	LogMsgJobScheduled  = "Job scheduled"
	LogMsgTickSkipped   = "Worker queue full, scheduled run skipped"
	LogMsgSchedulerStop = "Scheduler stopped"
)
