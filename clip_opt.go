package clip

type parseCfg struct {
	reportUnknown bool
}

type ParseOpt func(*parseCfg)

// WithReportUnknown selects whether unrecognized keys are reported to the
// error handler. By default they are ignored.
func WithReportUnknown(report bool) ParseOpt {
	return func(c *parseCfg) {
		c.reportUnknown = report
	}
}
