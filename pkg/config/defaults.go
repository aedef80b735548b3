package config

// Defaults returns the baseline settings shared by every service. Service specific values
// (the HTTP port) are merged on top by the caller.
func Defaults(port int) map[string]any {
	d := HTTPDefaults(port)
	d["log.level"] = "info"
	d["pprof.enabled"] = false
	d["pprof.addr"] = "localhost:6060"
	d["shutdown.timeout"] = "15s"
	d["metrics.enabled"] = true
	d["metrics.path"] = "/metrics"
	d["telemetry.enabled"] = false
	d["telemetry.traces.sampleratio"] = 1.0
	d["telemetry.traces.otlphttp.endpoint"] = "localhost:4318"
	d["telemetry.traces.otlphttp.insecure"] = true
	d["telemetry.traces.otlphttp.timeout"] = "5s"
	return d
}
