package engine

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/ConserveLee/mgbuy/internal/config"
	"github.com/ConserveLee/mgbuy/internal/constants"
	"github.com/ConserveLee/mgbuy/internal/engine/screen"
	"github.com/ConserveLee/mgbuy/internal/ledger"
)

// Outcome is the result of one procedure cycle.
type Outcome int

const (
	OutcomeNoPrice Outcome = iota
	OutcomeRejected
	OutcomeTooExpensive
	OutcomePurchased
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoPrice:
		return "no price"
	case OutcomeRejected:
		return "rejected"
	case OutcomeTooExpensive:
		return "too expensive"
	case OutcomePurchased:
		return "purchased"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// UI messages
const (
	MsgNoPrice      = "无法获取有效价格，跳过本次检查"
	MsgTooExpensive = "价格过高，重新刷新价格"
	MsgBadIdeal     = "理想价格必须大于0，请重新设置"
)

// Sampler captures a region as a binarized image.
type Sampler interface {
	Sample(r config.Region, threshold uint8) (image.Image, error)
}

// PriceReader extracts a price from a saved image.
type PriceReader interface {
	Price(path string) (int, error)
}

// RegionSource resolves configured screen regions.
type RegionSource interface {
	Region(key string) (config.Region, bool)
}

// Recorder appends purchase records.
type Recorder interface {
	Record(e ledger.Entry) (string, error)
}

// ModeSpec describes the screen interactions of one purchase mode.
type ModeSpec struct {
	Mode        int
	Label       string       // Ledger label
	RegionKey   string       // Config key of the price region
	OpenKey     string       // Pressed before clicking OpenPos, empty for none
	OpenPos     [2]float64
	Quantity    [][2]float64 // Clicked in order before the purchase button
	PurchasePos [2]float64
}

func Mode1Spec() ModeSpec {
	return ModeSpec{
		Mode:        1,
		Label:       "模式一成功购买！",
		RegionKey:   constants.KeyMode1PriceRegion,
		OpenKey:     constants.Mode1OpenKey,
		OpenPos:     constants.Mode1OpenPos,
		PurchasePos: constants.Mode1PurchasePos,
	}
}

func Mode2Spec() ModeSpec {
	quantity := [][2]float64{constants.Mode2PresetPos}
	for i := 0; i < constants.Mode2IncrementClicks; i++ {
		quantity = append(quantity, constants.Mode2IncrementPos)
	}
	return ModeSpec{
		Mode:        2,
		Label:       "模式二成功购买！",
		RegionKey:   constants.KeyMode2PriceRegion,
		OpenPos:     constants.Mode2OpenPos,
		Quantity:    quantity,
		PurchasePos: constants.Mode2PurchasePos,
	}
}

// Deps are the capabilities a procedure drives.
type Deps struct {
	Input   Input
	Sampler Sampler
	Reader  PriceReader
	Regions RegionSource
	State   *State
	Ledger  Recorder
}

// Procedure runs one check-and-buy cycle for a mode.
type Procedure struct {
	Spec       ModeSpec
	ScratchDir string

	LogFunc   func(string)
	DebugFunc func(string, ...interface{})

	deps  Deps
	sleep func(time.Duration)
}

func NewProcedure(spec ModeSpec, deps Deps, logFunc func(string), debugFunc func(string, ...interface{})) *Procedure {
	return &Procedure{
		Spec:       spec,
		ScratchDir: constants.ScratchDir,
		LogFunc:    logFunc,
		DebugFunc:  debugFunc,
		deps:       deps,
		sleep:      time.Sleep,
	}
}

// Premium is how far observed sits above ideal, in percent.
func Premium(observed, ideal int) float64 {
	return (float64(observed)/float64(ideal) - 1) * 100
}

// Favorable reports whether observed should be bought at ideal. For ideal > 0
// both conditions agree; they are kept together as the purchase rule.
func Favorable(observed, ideal int) bool {
	return Premium(observed, ideal) < 0 || observed < ideal
}

// Run executes the full cycle. It is never interrupted by the run flag.
func (p *Procedure) Run() Outcome {
	delay := p.deps.State.Delay(p.Spec.Mode)

	p.open()
	p.sleep(delay)

	price, ok := p.readPrice()
	if !ok {
		p.LogFunc(MsgNoPrice)
		p.cancel()
		return OutcomeNoPrice
	}

	ideal := p.deps.State.IdealPrice(p.Spec.Mode)
	if ideal <= 0 {
		p.LogFunc(MsgBadIdeal)
		p.cancel()
		return OutcomeRejected
	}

	premium := Premium(price, ideal)
	p.DebugFunc("模式%d 价格: %d 理想价格: %d 溢价: %.2f%%", p.Spec.Mode, price, ideal, premium)

	if !Favorable(price, ideal) {
		p.LogFunc(MsgTooExpensive)
		p.cancel()
		p.sleep(delay)
		return OutcomeTooExpensive
	}

	p.buy()
	p.record(ledger.Entry{
		Label:      p.Spec.Label,
		IdealPrice: ideal,
		Price:      price,
		Premium:    premium,
	})
	p.sleep(delay)
	p.cancel()
	return OutcomePurchased
}

func (p *Procedure) open() {
	if p.Spec.OpenKey != "" {
		p.tap(p.Spec.OpenKey)
	}
	clickAt(p.deps.Input, p.Spec.OpenPos)
}

func (p *Procedure) buy() {
	for _, pos := range p.Spec.Quantity {
		clickAt(p.deps.Input, pos)
	}
	clickAt(p.deps.Input, p.Spec.PurchasePos)
}

func (p *Procedure) cancel() {
	p.tap(constants.CancelKey)
}

func (p *Procedure) tap(key string) {
	if err := p.deps.Input.Tap(key); err != nil {
		p.DebugFunc("key %s failed: %v", key, err)
	}
}

// readPrice samples the price region and runs OCR on it. Region problems are
// already logged by the config store.
func (p *Procedure) readPrice() (int, bool) {
	region, ok := p.deps.Regions.Region(p.Spec.RegionKey)
	if !ok {
		return 0, false
	}

	img, err := p.deps.Sampler.Sample(region, constants.PriceThreshold)
	if err != nil {
		p.DebugFunc("sample %s: %v", p.Spec.RegionKey, err)
		return 0, false
	}

	path, err := screen.SaveScratch(p.ScratchDir, constants.PriceImage, img)
	if err != nil {
		p.DebugFunc("save scratch: %v", err)
		return 0, false
	}

	price, err := p.deps.Reader.Price(path)
	if err != nil {
		p.DebugFunc("ocr %s: %v", path, err)
		return 0, false
	}
	return price, true
}

func (p *Procedure) record(e ledger.Entry) {
	line, err := p.deps.Ledger.Record(e)
	p.LogFunc(strings.TrimRight(line, " \n"))
	if err != nil {
		p.LogFunc(fmt.Sprintf("[错误] 写入购买记录失败: %v", err))
	}
}
