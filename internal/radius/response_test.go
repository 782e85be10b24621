package radius

import (
	"strconv"
	"testing"

	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2868"
	"layeh.com/radius/rfc2869"
)

func newTestRequest(secret []byte) *radius.Packet {
	p := radius.New(radius.CodeAccessRequest, secret)
	_ = rfc2865.UserName_AddString(p, "001122334455")
	_ = rfc2865.CallingStationID_AddString(p, "00:11:22:33:44:55")
	return p
}

func TestBuildAccessAccept_VlanAttributes(t *testing.T) {
	secret := []byte("test-secret")
	req := newTestRequest(secret)

	resp := BuildAccessAccept(req, secret, &AcceptParams{
		VlanID:      100,
		ProxyStates: &ProxyStates{},
	})

	if resp.Code != radius.CodeAccessAccept {
		t.Errorf("Code = %d, want %d", resp.Code, radius.CodeAccessAccept)
	}

	// Tunnel-Type確認（VLAN=13）
	_, tunnelType := rfc2868.TunnelType_Get(resp)
	if tunnelType != 13 {
		t.Errorf("TunnelType = %d, want 13 (VLAN)", tunnelType)
	}

	// Tunnel-Medium-Type確認（IEEE 802=6）
	_, mediumType := rfc2868.TunnelMediumType_Get(resp)
	if mediumType != rfc2868.TunnelMediumType_Value_IEEE802 {
		t.Errorf("TunnelMediumType = %d, want %d (IEEE802)", mediumType, rfc2868.TunnelMediumType_Value_IEEE802)
	}

	// Tunnel-Private-Group-IdはVLAN IDの文字列表現
	_, groupID := rfc2868.TunnelPrivateGroupID_GetString(resp)
	if groupID != "100" {
		t.Errorf("TunnelPrivateGroupID = %q, want %q", groupID, "100")
	}

	// Message-Authenticator存在確認
	_, err := rfc2869.MessageAuthenticator_Lookup(resp)
	if err != nil {
		t.Error("Message-Authenticator not found in response")
	}
}

func TestBuildAccessAccept_VlanIDStringified(t *testing.T) {
	secret := []byte("test-secret")

	for _, vlanID := range []int{1, 42, 4094} {
		req := newTestRequest(secret)
		resp := BuildAccessAccept(req, secret, &AcceptParams{
			VlanID:      vlanID,
			ProxyStates: &ProxyStates{},
		})

		_, groupID := rfc2868.TunnelPrivateGroupID_GetString(resp)
		if groupID != strconv.Itoa(vlanID) {
			t.Errorf("TunnelPrivateGroupID = %q, want %q", groupID, strconv.Itoa(vlanID))
		}
	}
}

func TestBuildAccessAccept_ProxyState(t *testing.T) {
	secret := []byte("test-secret")
	req := newTestRequest(secret)
	_ = rfc2865.ProxyState_Add(req, []byte("proxy-hop-1"))
	_ = rfc2865.ProxyState_Add(req, []byte("proxy-hop-2"))

	ps := ExtractProxyStates(req)

	resp := BuildAccessAccept(req, secret, &AcceptParams{
		VlanID:      100,
		ProxyStates: ps,
	})

	respStates, err := rfc2865.ProxyState_Gets(resp)
	if err != nil {
		t.Fatal(err)
	}
	if len(respStates) != 2 {
		t.Fatalf("response has %d ProxyState, want 2", len(respStates))
	}
	if string(respStates[0]) != "proxy-hop-1" {
		t.Errorf("ProxyState[0] = %q, want %q", string(respStates[0]), "proxy-hop-1")
	}
}

func TestBuildAccessReject_NoVlanAttributes(t *testing.T) {
	secret := []byte("test-secret")
	req := newTestRequest(secret)

	resp := BuildAccessReject(req, secret, &RejectParams{
		ProxyStates: &ProxyStates{},
	})

	if resp.Code != radius.CodeAccessReject {
		t.Errorf("Code = %d, want %d", resp.Code, radius.CodeAccessReject)
	}

	// RejectにVLAN属性が載らないこと
	if _, _, err := rfc2868.TunnelPrivateGroupID_Lookup(resp); err == nil {
		t.Error("Reject should not contain Tunnel-Private-Group-Id")
	}
}

func TestBuildAccessReject_HasMessageAuth(t *testing.T) {
	secret := []byte("test-secret")
	req := newTestRequest(secret)

	resp := BuildAccessReject(req, secret, &RejectParams{
		ProxyStates: &ProxyStates{},
	})

	ma, err := rfc2869.MessageAuthenticator_Lookup(resp)
	if err != nil {
		t.Fatal("Message-Authenticator not found in Reject response")
	}
	if len(ma) != 16 {
		t.Errorf("Message-Authenticator length = %d, want 16", len(ma))
	}
}

func TestBuildAccountingResponse(t *testing.T) {
	secret := []byte("test-secret")
	req := radius.New(radius.CodeAccountingRequest, secret)
	_ = rfc2865.ProxyState_Add(req, []byte("proxy-1"))

	resp := BuildAccountingResponse(req)

	if resp.Code != radius.CodeAccountingResponse {
		t.Errorf("Code = %d, want %d", resp.Code, radius.CodeAccountingResponse)
	}

	// Proxy-Stateエコーバック確認
	states, err := rfc2865.ProxyState_Gets(resp)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 1 || string(states[0]) != "proxy-1" {
		t.Errorf("ProxyState echo: got %v", states)
	}
}
