package utils

import "go.uber.org/zap"

var Logger = zap.Must(zap.NewProduction()).Sugar()
