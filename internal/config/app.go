package config

// LogFile is where the game writes its logs. Logs are dropped when it is
// empty, since the terminal belongs to the board.
func LogFile() string {
	return v.GetString("log.file")
}

// LogMaxSize is the size in megabytes at which the log file is rotated.
func LogMaxSize() int {
	size := v.GetInt("log.max_size")
	if size <= 0 {
		return defaultLogMaxSize
	}
	return size
}
