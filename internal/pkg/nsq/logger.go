package nsq

import (
	"github.com/nsqio/go-nsq"
	"github.com/piresc/ridepay/internal/pkg/logger"
)

// zapBridge routes go-nsq's internal log lines to the application logger
type zapBridge struct{}

func (zapBridge) Output(calldepth int, s string) error {
	logger.Debug("nsq", logger.String("line", s))
	return nil
}

const nsqLogLevel = nsq.LogLevelWarning
