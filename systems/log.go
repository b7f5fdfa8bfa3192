package systems

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger routes system log output through l.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}
