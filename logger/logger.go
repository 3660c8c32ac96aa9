package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/lunixbochs/vtclean"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

// Logger wraps a logrus logger which optionally mirrors
// every entry to a plain-text file
type Logger struct {
	*logrus.Logger
	hook *fileHook
}

// fileHook appends entries to a file, stripped of terminal escapes
type fileHook struct {
	filePath   string
	fileHandle *os.File
	mutex      sync.Mutex
}

// Build returns a new logger at the given level, appending to filePath if not empty
func Build(level, filePath string) (*Logger, error) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := &Logger{Logger: logrus.New()}
	log.SetLevel(parsedLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		ForceFormatting: true,
	})

	if filePath != "" {
		log.hook = &fileHook{filePath: filePath}
		log.AddHook(log.hook)
	}
	return log, nil
}

// Discard returns a logger swallowing every entry
func Discard() *Logger {
	log := &Logger{Logger: logrus.New()}
	log.SetOutput(io.Discard)
	return log
}

// Component returns an entry tagged with the given component prefix
func (log *Logger) Component(name string) *logrus.Entry {
	return log.WithField("prefix", name)
}

// Destroy closes the file descriptor corresponding to the log file
func (log *Logger) Destroy() error {
	if log.hook == nil {
		return nil
	}
	return log.hook.close()
}

func (hook *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook *fileHook) Fire(entry *logrus.Entry) error {
	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if hook.fileHandle == nil {
		fileHandle, err := os.OpenFile(hook.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return err
		}
		hook.fileHandle = fileHandle
	}

	_, err := hook.fileHandle.WriteString(line(entry))
	return err
}

func (hook *fileHook) close() error {
	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if hook.fileHandle == nil {
		return nil
	}
	err := hook.fileHandle.Close()
	hook.fileHandle = nil
	return err
}

func line(entry *logrus.Entry) string {
	var (
		prefix string
		fields []string
	)
	for key, value := range entry.Data {
		if key == "prefix" {
			prefix = fmt.Sprintf(" %v:", value)
			continue
		}
		fields = append(fields, fmt.Sprintf("%s=%v", key, value))
	}
	sort.Strings(fields)

	message := vtclean.Clean(strings.ReplaceAll(entry.Message, "\n", " "), false)
	if len(fields) > 0 {
		message = fmt.Sprintf("%s %s", message, strings.Join(fields, " "))
	}
	return fmt.Sprintf("[%s] %s%s %s\n",
		entry.Time.Format(timestampFormat), strings.ToUpper(entry.Level.String()), prefix, message)
}
