package syncer

import (
	"os"
	"testing"

	"github.com/vfg2006/ads-insights-engine/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}
