package memory

import "fmt"

// mbcType identifies which bank-controller variant a cartridge header selects.
type mbcType int

const (
	NoMBCType mbcType = iota
	MBC1Type
	MBC3Type
	MBCUnknownType
)

const (
	headerTitleStart    = 0x134
	headerTitleEnd      = 0x143
	headerCartTypeAddr  = 0x147
	headerRAMSizeAddr   = 0x149
	headerChecksumStart = 0x134
	headerChecksumEnd   = 0x14C
	headerChecksumAddr  = 0x14D
	minROMSize          = 0x150
)

// Cartridge holds the raw ROM image and header-derived metadata needed to
// pick and construct the right memory bank controller.
type Cartridge struct {
	data         []byte
	title        string
	mbcType      mbcType
	hasBattery   bool
	hasRTC       bool
	ramBankCount uint8
}

// NewCartridge returns an empty cartridge, equivalent to a Game Boy powered
// on with no cartridge inserted.
func NewCartridge() *Cartridge {
	return &Cartridge{mbcType: NoMBCType}
}

// NewCartridgeFromData parses a raw ROM image and validates its header,
// returning a fatal, diagnostic-bearing error on any violation (unsupported
// controller variant, bad checksum, truncated image) per the load-time error
// taxonomy: no partial cartridge is ever returned alongside an error.
func NewCartridgeFromData(data []byte) (*Cartridge, error) {
	if len(data) < minROMSize {
		return nil, fmt.Errorf("cartridge: image too small (%d bytes, need at least %d)", len(data), minROMSize)
	}

	if err := verifyHeaderChecksum(data); err != nil {
		return nil, err
	}

	cart := &Cartridge{
		data:  data,
		title: cleanGameboyTitle(data[headerTitleStart:headerTitleEnd]),
	}

	cartType := data[headerCartTypeAddr]
	switch cartType {
	case 0x00:
		cart.mbcType = NoMBCType
	case 0x01, 0x02, 0x03:
		cart.mbcType = MBC1Type
		cart.hasBattery = cartType == 0x03
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		cart.mbcType = MBC3Type
		cart.hasRTC = cartType == 0x0F || cartType == 0x10
		cart.hasBattery = cartType == 0x0F || cartType == 0x10 || cartType == 0x13
	default:
		return nil, fmt.Errorf("cartridge: unsupported controller variant (header byte 0x147 = 0x%02X)", cartType)
	}

	cart.ramBankCount = ramBankCountFromHeader(data[headerRAMSizeAddr])

	return cart, nil
}

// ramBankCountFromHeader maps the 0x149 RAM-size header byte to a bank
// count of 8KiB banks.
func ramBankCountFromHeader(b byte) uint8 {
	switch b {
	case 0x00:
		return 0
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	default:
		return 0
	}
}

// verifyHeaderChecksum recomputes the 0x134-0x14C header checksum and
// compares it against the byte stored at 0x14D.
func verifyHeaderChecksum(data []byte) error {
	if len(data) <= headerChecksumAddr {
		return fmt.Errorf("cartridge: image too small to contain a header checksum")
	}

	var sum byte
	for i := headerChecksumStart; i <= headerChecksumEnd; i++ {
		sum = sum - data[i] - 1
	}

	expected := data[headerChecksumAddr]
	if sum != expected {
		return fmt.Errorf("cartridge: invalid header checksum (computed 0x%02X, expected 0x%02X)", sum, expected)
	}

	return nil
}

// Title returns the cleaned-up game title from the cartridge header.
func (c *Cartridge) Title() string {
	return c.title
}

// Slice returns a read-only view of the raw ROM bytes between start and end,
// or nil when the range is out of bounds. OAM DMA does not use it; it reads
// its source byte by byte through MMU.Read.
func (c *Cartridge) Slice(start, end int) []byte {
	if start < 0 || end > len(c.data) || start > end {
		return nil
	}
	return c.data[start:end]
}
