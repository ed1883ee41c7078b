// Package addrspacemock contains a hand-maintained gomock.Controller
// mock for addrspace.AddressSpace, in the shape mockgen would generate
// from:
//
//	mockgen -destination addrspacemock/mock_addrspace.go -package addrspacemock github.com/db47h/vsrtl/addrspace AddressSpace
package addrspacemock

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockAddressSpace is a mock of the AddressSpace interface.
type MockAddressSpace struct {
	ctrl     *gomock.Controller
	recorder *MockAddressSpaceMockRecorder
}

// MockAddressSpaceMockRecorder is the mock recorder for MockAddressSpace.
type MockAddressSpaceMockRecorder struct {
	mock *MockAddressSpace
}

// NewMockAddressSpace creates a new mock instance.
func NewMockAddressSpace(ctrl *gomock.Controller) *MockAddressSpace {
	mock := &MockAddressSpace{ctrl: ctrl}
	mock.recorder = &MockAddressSpaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAddressSpace) EXPECT() *MockAddressSpaceMockRecorder {
	return m.recorder
}

// ReadValue mocks base method.
func (m *MockAddressSpace) ReadValue(addr uint64, size int) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadValue", addr, size)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// ReadValue indicates an expected call of ReadValue.
func (mr *MockAddressSpaceMockRecorder) ReadValue(addr, size interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadValue", reflect.TypeOf((*MockAddressSpace)(nil).ReadValue), addr, size)
}

// WriteValue mocks base method.
func (m *MockAddressSpace) WriteValue(addr, value uint64, size int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "WriteValue", addr, value, size)
}

// WriteValue indicates an expected call of WriteValue.
func (mr *MockAddressSpaceMockRecorder) WriteValue(addr, value, size interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteValue", reflect.TypeOf((*MockAddressSpace)(nil).WriteValue), addr, value, size)
}
