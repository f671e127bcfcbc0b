package relay

import "time"

const (
	defaultBatchSize         = 500
	defaultSettleWorkerCount = 8

	sleepDuration     = 5 * time.Second
	idleSleepDuration = 1 * time.Second
)
