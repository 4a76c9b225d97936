// Package store 提供 core.Store / core.KeyValueStore 的具体实现。
//
// 接口定义在 core 包，这里只有实现：
//   - MemoryStore：内存实现，用于测试/开发/单机演示
//   - RedisStore：Redis 实现，用于生产环境的品牌档案与热度榜
//
// 典型数据布局：
//
//	brand:catalog  (hash)  field=品牌ID, value=候选 JSON
//	brand:trending (zset)  member=品牌ID, score=热度
package store
