package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/swingscene/radar/internal/domain"
	"github.com/swingscene/radar/internal/index"
	"github.com/swingscene/radar/internal/logger"
	"github.com/swingscene/radar/internal/sources/dataset"
)

// FlagLoader provides the persisted verification flags to merge into a
// freshly loaded dataset.
type FlagLoader interface {
	LoadVerified(ctx context.Context) (domain.VerifiedFlags, error)
}

// DatasetReloader handles the initial dataset load plus periodic and manual
// reloads. Every reload re-applies the verification overlay, so a reload
// never loses toggles made since startup.
type DatasetReloader struct {
	loader        *dataset.Loader
	flags         FlagLoader
	index         *index.CommunityIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewDatasetReloader creates a new dataset reloader.
func NewDatasetReloader(
	datasetFile string,
	flags FlagLoader,
	idx *index.CommunityIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *DatasetReloader {
	return &DatasetReloader{
		loader:        dataset.NewLoader(datasetFile),
		flags:         flags,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the dataset immediately, then begins the periodic reload
// loop. A failed initial load is terminal: the service has nothing to
// serve without it.
func (dr *DatasetReloader) Start(ctx context.Context) error {
	if err := dr.Reload(ctx); err != nil {
		return fmt.Errorf("initial dataset load failed: %w", err)
	}

	ticker := time.NewTicker(dr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := dr.Reload(ctx); err != nil {
					dr.logger.Error("failed to reload dataset",
						logger.Error(err))
				}
			case <-dr.manualTrigger:
				dr.logger.Info("manual dataset reload triggered")
				if err := dr.Reload(ctx); err != nil {
					dr.logger.Error("failed to reload dataset",
						logger.Error(err))
				}
			case <-dr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (dr *DatasetReloader) Stop() {
	close(dr.stopCh)
}

// Reload loads the dataset file, normalizes it, merges the persisted
// verification flags and swaps the result into the index.
func (dr *DatasetReloader) Reload(ctx context.Context) error {
	dr.logger.Info("reloading communities dataset")

	doc, err := dr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	records := dataset.NormalizeDocument(doc)

	flags, err := dr.flags.LoadVerified(ctx)
	if err != nil {
		// Degrade to "nothing is verified" rather than refusing the reload.
		dr.logger.Warn("failed to load verification flags, applying none",
			logger.Error(err))
		flags = domain.VerifiedFlags{}
	}

	dr.index.Replace(domain.ApplyVerification(records, flags))

	dr.logger.Info("dataset reloaded",
		logger.Int("records", len(records)),
		logger.Int("verified", len(flags)))

	return nil
}
