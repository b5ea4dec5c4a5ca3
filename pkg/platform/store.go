package platform

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// OpenStore 准备存储目录并打开 gdata 存储
func OpenStore(appName string) (*gdata.Manager, error) {
	if err := EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage: %w", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return m, nil
}
