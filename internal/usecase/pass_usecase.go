package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/observability"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const thumbnailImageName = "thumbnail"

// IPassUseCase covers the two card routes:
//   - POST /card/  => Generate()
//   - GET /card/:id => GetBySerialNumber()
type IPassUseCase interface {
	Generate(ctx context.Context, raw entities.RawRecord) (entities.StoredPass, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (entities.StoredPass, error)
}

type PassUseCase struct {
	repo     interfaces.IPassRepository
	fetcher  interfaces.IImageFetcher
	renderer interfaces.IThumbnailRenderer
	packager interfaces.IPassPackager
	template entities.PassTemplate
	mapper   FieldMapper
	logger   *zap.Logger

	newSerialNumber func() string
	now             func() time.Time
}

var _ IPassUseCase = (*PassUseCase)(nil)

func NewPassUseCase(
	repo interfaces.IPassRepository,
	fetcher interfaces.IImageFetcher,
	renderer interfaces.IThumbnailRenderer,
	packager interfaces.IPassPackager,
	template entities.PassTemplate,
	mapper FieldMapper,
	logger *zap.Logger,
) *PassUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PassUseCase{
		repo:            repo,
		fetcher:         fetcher,
		renderer:        renderer,
		packager:        packager,
		template:        template,
		mapper:          mapper,
		logger:          logger,
		newSerialNumber: uuid.NewString,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Generate validates the record, builds and signs its pass and stores it.
// Nothing is stored unless every step succeeded.
func (u *PassUseCase) Generate(ctx context.Context, raw entities.RawRecord) (entities.StoredPass, error) {
	card, err := ClassifyCard(raw)
	if err != nil {
		u.logger.Info("[card][usecase] invalid record", zap.Error(err))
		observability.PassesGenerated.WithLabelValues("unknown", outcome(err)).Inc()
		return entities.StoredPass{}, err
	}
	cardType := string(card.Type())

	stored, err := u.generate(ctx, card)
	observability.PassesGenerated.WithLabelValues(cardType, outcome(err)).Inc()
	if err != nil {
		u.logger.Warn("[card][usecase] generate failed", zap.String("card_type", cardType), zap.Error(err))
		return entities.StoredPass{}, err
	}
	u.logger.Info("[card][usecase] generate success",
		zap.String("card_type", cardType),
		zap.String("serial_number", stored.SerialNumber),
		zap.Int("artifact_len", len(stored.Artifact)),
	)
	return stored, nil
}

func (u *PassUseCase) generate(ctx context.Context, card entities.CardRecord) (entities.StoredPass, error) {
	pass := u.template.NewPass(u.newSerialNumber())

	u.mapper.Map(pass, card)
	pass.SetBarcodes(GenerateBarcodes(card))
	if err := u.embedImage(ctx, pass, card.Common().ImageURL); err != nil {
		return entities.StoredPass{}, err
	}

	artifact, err := u.packager.Package(pass)
	if err != nil {
		return entities.StoredPass{}, fmt.Errorf("package pass: %w", err)
	}

	return u.repo.Create(ctx, entities.StoredPass{
		SerialNumber: pass.SerialNumber,
		CardType:     card.Type(),
		CreatedAt:    u.now(),
		Pass:         *pass,
		Artifact:     artifact,
	})
}

// embedImage attaches the thumbnail variants of imageURL; a blank URL is a no-op.
func (u *PassUseCase) embedImage(ctx context.Context, pass *entities.Pass, imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil
	}

	source, err := u.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		u.logger.Warn("[card][usecase] thumbnail fetch failed", zap.String("image_url", imageURL), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrImageRequestAborted, err)
	}

	images, err := u.renderer.Render(ctx, thumbnailImageName, source)
	if errors.Is(err, interfaces.ErrImageLimitExceeded) {
		u.logger.Warn("[card][usecase] thumbnail refused", zap.String("image_url", imageURL), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrImageRequestAborted, err)
	}
	if err != nil {
		return err
	}
	pass.AddImages(images...)
	return nil
}

func (u *PassUseCase) GetBySerialNumber(ctx context.Context, serialNumber string) (entities.StoredPass, error) {
	serialNumber = strings.TrimSpace(serialNumber)
	if serialNumber == "" {
		observability.PassLookups.WithLabelValues("not_found").Inc()
		return entities.StoredPass{}, ErrPassNotFound
	}

	p, err := u.repo.GetBySerialNumber(ctx, serialNumber)
	if err != nil {
		observability.PassLookups.WithLabelValues("error").Inc()
		return entities.StoredPass{}, err
	}
	if p.SerialNumber == "" {
		observability.PassLookups.WithLabelValues("not_found").Inc()
		return entities.StoredPass{}, ErrPassNotFound
	}
	observability.PassLookups.WithLabelValues("found").Inc()
	return p, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMissingValueOnRequest):
		return "missing_value"
	case errors.Is(err, ErrInvalidCardType):
		return "invalid_type"
	case errors.Is(err, ErrImageRequestAborted):
		return "image_aborted"
	default:
		return "error"
	}
}
