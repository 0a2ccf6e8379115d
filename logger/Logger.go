package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	mu      sync.RWMutex
	console bool
}

type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
	Console     bool
}

func newLoggerViper(fs afero.Fs, dir string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", false)
	return v
}

func readLoggerProperties(v *viper.Viper) Properties {
	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
		Console:     cast.ToBool(v.Get("console")),
	}
}

// Init reads logger.properties from dir on fs. A missing file leaves the defaults in place.
// Level changes to the file are picked up while the program runs.
func (l *Logger) Init(fs afero.Fs, dir string) (Properties, error) {
	v := newLoggerViper(fs, dir)

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read logger properties: %w", err)
		}
		found = false
	}

	props := readLoggerProperties(v)
	l.Apply(props, &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	})

	//只有真實檔案系統才能監聽檔案變動
	if _, onDisk := fs.(*afero.OsFs); found && onDisk {
		v.OnConfigChange(func(e fsnotify.Event) {
			if e.Op&fsnotify.Write == 0 {
				return
			}
			level := cast.ToString(v.Get("level"))
			logrus.SetLevel(ParseLevel(level))
			l.Info(fmt.Sprintf(LevelReloadedMsg, level))
		})
		v.WatchConfig()
	}

	return props, nil
}

// Apply points logrus at out with the level and echo flag from props.
func (l *Logger) Apply(props Properties, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(props.Level))

	l.mu.Lock()
	l.console = props.Console
	l.mu.Unlock()
}

func ParseLevel(level string) logrus.Level {
	switch strings.TrimSpace(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Debug":
		return logrus.DebugLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) echo(prefix, message string) {
	l.mu.RLock()
	console := l.console
	l.mu.RUnlock()

	if console {
		fmt.Fprintln(os.Stdout, prefix, message)
	}
}

func (l *Logger) Trace(message string) {
	logrus.Trace(message)
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		l.echo("Trace:", message)
	}
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		l.echo("Debug:", message)
	}
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	logrus.Fatal(message)
}
