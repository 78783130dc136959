package ram

import "testing"

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM()
	r.Write(0xC000, 0x42)
	if r.Read(0xC000) != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", r.Read(0xC000))
	}
	if r.Read(0xC001) != 0x00 {
		t.Errorf("expected fresh memory to read zero, got 0x%02X", r.Read(0xC001))
	}
}

func TestRAM_Words(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0xC000, 0x1234)
	if r.Read(0xC000) != 0x34 || r.Read(0xC001) != 0x12 {
		t.Errorf("expected low byte first, got 0x%02X 0x%02X", r.Read(0xC000), r.Read(0xC001))
	}
	if r.ReadWord(0xC000) != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", r.ReadWord(0xC000))
	}
}

func TestRAM_Load(t *testing.T) {
	r := NewRAM()
	r.Load([]byte{0x01, 0x02, 0x03}, 0x0100)
	if r.Read(0x0100) != 0x01 || r.Read(0x0102) != 0x03 {
		t.Errorf("expected image at 0x0100, got 0x%02X 0x%02X", r.Read(0x0100), r.Read(0x0102))
	}
	if r.Read(0x0103) != 0x00 {
		t.Errorf("expected memory past the image untouched, got 0x%02X", r.Read(0x0103))
	}
}
