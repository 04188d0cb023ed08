package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogSimulation | LogOpenGL | LogTextures | LogSystem

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogSimulation LogCategory = 1 << iota
	LogOpenGL
	LogTextures
	LogSystem
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogSimInfo(txt string) {
	log(LogSimulation, LogLevelInfo, txt)
}

func LogSimDebug(txt string) {
	log(LogSimulation, LogLevelDebug, txt)
}

func LogSimWarning(txt string) {
	log(LogSimulation, LogLevelWarning, txt)
}

func LogGlInfo(txt string) {
	log(LogOpenGL, LogLevelInfo, txt)
}

func LogGlDebug(txt string) {
	log(LogOpenGL, LogLevelDebug, txt)
}

func LogGlError(txt string) {
	log(LogOpenGL, LogLevelError, txt)
}

func LogTextureDebug(txt string) {
	log(LogTextures, LogLevelDebug, txt)
}

func LogTextureError(txt string) {
	log(LogTextures, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
